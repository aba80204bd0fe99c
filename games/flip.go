package games

func init() {
	Register(WagerFlipACoin, &flipACoin{})
}

// flipACoin num为0或1, 猜中即按两倍毛赔付
type flipACoin struct{}

func (f *flipACoin) Name() string { return "flipacoin" }

func (f *flipACoin) CheckNum(num int64) bool {
	return num == 0 || num == 1
}

func (f *flipACoin) UserProfit(num, betValue int64, serverSeed, userSeed []byte) (int64, error) {
	if Outcome(serverSeed, userSeed, 2) == num {
		return winProfit(betValue, 2, 1)
	}
	return -betValue, nil
}

func (f *flipACoin) MaxUserProfit(num, betValue int64) (int64, error) {
	return winProfit(betValue, 2, 1)
}

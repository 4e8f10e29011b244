package entity

type Result int

const (
	ResultInProgress Result = iota
	ResultWon
	ResultDraw
)

// Outcome is the result of evaluating a board. Winner is set only for ResultWon.
type Outcome struct {
	Result Result
	Winner string
}

func InProgress() Outcome {
	return Outcome{Result: ResultInProgress}
}

func Won(symbol string) Outcome {
	return Outcome{Result: ResultWon, Winner: symbol}
}

func Draw() Outcome {
	return Outcome{Result: ResultDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Result != ResultInProgress
}

func (that Outcome) String() string {
	switch that.Result {
	case ResultWon:
		return that.Winner + " won"
	case ResultDraw:
		return "draw"
	default:
		return "in progress"
	}
}

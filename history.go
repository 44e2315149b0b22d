package calculator

// HistorySize is the maximum number of entries in a History.
const HistorySize = 5

// Entry is one evaluated expression and its formatted result.
type Entry struct {
	Expr   string `json:"expression"`
	Result string `json:"result"`
}

func (e Entry) String() string {
	return e.Expr + " = " + e.Result
}

// History is a list of evaluations, newest first.
type History []Entry

// Push returns a new history with e first, dropping the oldest entries beyond
// HistorySize. h is not modified.
func (h History) Push(e Entry) History {
	n := len(h) + 1
	if n > HistorySize {
		n = HistorySize
	}
	r := make(History, n)
	r[0] = e
	copy(r[1:], h)
	return r
}

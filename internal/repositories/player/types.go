package player

// RecordResultInput contains one player's outcome in a finished match
type RecordResultInput struct {
	Name   string
	Points int
	Won    bool
}

// GetPlayerRecordInput contains parameters for retrieving a record
type GetPlayerRecordInput struct {
	Name string
}

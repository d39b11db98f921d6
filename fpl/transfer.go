package fpl

// Transfer is one move in a manager's transfer history
type Transfer struct {
	ElementIn      int64  `json:"element_in"`
	ElementInCost  int64  `json:"element_in_cost"`
	ElementOut     int64  `json:"element_out"`
	ElementOutCost int64  `json:"element_out_cost"`
	Entry          int64  `json:"entry"`
	Event          int64  `json:"event"`
	Time           string `json:"time"`
}

package api

//Employee is one available worker in the request
type Employee struct {
	ID             string   `json:"id"`
	QualifiedLines []string `json:"qualified_lines"`
}

//ProductionOrder is one order to place within the shift
type ProductionOrder struct {
	OrderNumber    string  `json:"order_number"`
	MaterialNumber string  `json:"material_number"`
	Quantity       int     `json:"quantity"`
	TimeToComplete float64 `json:"time_to_complete"`
}

//Material lists lines capable of producing it
type Material struct {
	MaterialNumber string   `json:"material_number"`
	Lines          []string `json:"lines"`
}

//PlanRequest is the POST /plan body
type PlanRequest struct {
	LinesAvailable     []string          `json:"lines_available"`
	EmployeesAvailable []Employee        `json:"employees_available"`
	ProductionOrders   []ProductionOrder `json:"production_orders"`
	Materials          []Material        `json:"materials"`
	ShiftStart         string            `json:"shift_start,omitempty"`
	ShiftLengthSeconds int               `json:"shift_length_seconds"`
}

//Placement is one scheduled order in the response
type Placement struct {
	OrderNumber    string `json:"order_number"`
	StartTimestamp string `json:"start_timestamp"`
}

//PlanResponse is the POST /plan result
type PlanResponse struct {
	ShiftStart string                 `json:"shift_start"`
	Lines      []string               `json:"lines"`
	Assignment map[string]string      `json:"assignment"`
	Sequence   map[string][]Placement `json:"sequence"`
}

package weatherapi

// CurrentResponse is the subset of /v1/current.json the tool reads. Required
// fields are pointers so a missing key can be told apart from a zero value.
type CurrentResponse struct {
	Location struct {
		Name    *string `json:"name"`
		Region  string  `json:"region"`
		Country string  `json:"country"`
	} `json:"location"`
	Current struct {
		TempC     *float64 `json:"temp_c"`
		Condition struct {
			Text *string `json:"text"`
			Code *int    `json:"code"`
		} `json:"condition"`
	} `json:"current"`
}

// ErrorResponse is the body weatherapi.com sends with non-2xx statuses.
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Current is a validated current-conditions reading.
type Current struct {
	City      string
	Region    string
	Country   string
	Condition string
	Code      int
	TempC     float64
}

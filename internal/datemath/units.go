package datemath

// UnitInfo pairs a unit code with its name for display purposes.
type UnitInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedUnits lists the unit codes in descending size order.
func SupportedUnits() []UnitInfo {
	return []UnitInfo{
		{Code: "y", Name: "year"},
		{Code: "Q", Name: "quarter"},
		{Code: "M", Name: "month"},
		{Code: "w", Name: "week"},
		{Code: "d", Name: "day"},
		{Code: "h", Name: "hour"},
		{Code: "m", Name: "minute"},
		{Code: "s", Name: "second"},
	}
}

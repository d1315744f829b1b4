package sheets

type spreadsheetEnvelope struct {
	Sheets []sheetItem `json:"sheets"`
}

type sheetItem struct {
	Properties sheetProperties `json:"properties"`
}

type sheetProperties struct {
	Title string `json:"title"`
}

type valueRangeEnvelope struct {
	Range          string  `json:"range"`
	MajorDimension string  `json:"majorDimension"`
	Values         [][]any `json:"values"`
}

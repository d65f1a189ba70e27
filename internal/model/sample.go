package model

// sampleCustomers is the starter list shown on first launch
var sampleCustomers = []Customer{
	{ID: 1, Name: "김민준", Company: "네이버"},
	{ID: 2, Name: "이서연", Company: "카카오"},
	{ID: 3, Name: "박지훈", Company: "라인"},
	{ID: 4, Name: "최수아", Company: "쿠팡"},
	{ID: 5, Name: "정예준", Company: "배달의민족"},
	{ID: 6, Name: "강하은", Company: "토스"},
	{ID: 7, Name: "조도윤", Company: "당근마켓"},
	{ID: 8, Name: "윤지우", Company: "야놀자"},
}

// SampleCustomers returns a fresh copy of the starter list
func SampleCustomers() []Customer {
	out := make([]Customer, len(sampleCustomers))
	copy(out, sampleCustomers)
	return out
}

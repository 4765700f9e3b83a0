package availability

// DaySlots слоты одной даты
type DaySlots struct {
	Date      string
	Available bool
	Slots     []string
}

package fields

// Field names collected by the demand wizard.
const (
	Title           = "title"
	Description     = "description"
	Category        = "category"
	Budget          = "budget"
	Timeline        = "timeline"
	CooperationType = "cooperationType"
)

var names = []string{Title, Description, Category, Budget, Timeline, CooperationType}

// Names lists the known fields in canonical order.
func Names() []string {
	return append([]string(nil), names...)
}

// Known reports whether name is one of the demand fields.
func Known(name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

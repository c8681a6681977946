package assert

// NotNil panics if value is a nil interface, it is meant for required dependencies
// passed to constructors.
func NotNil(value any) {
	if value == nil {
		panic("expected dependency to be not nil")
	}
}

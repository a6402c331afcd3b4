package wplot

// Adjustment is a scrollable value range: a window of pageSize positioned at
// value within [lower,upper]. An axis bound to an adjustment exposes its full
// bounds through it and narrows its displayed range to the window, so a host
// can attach a scrollbar or its own panning logic.
//
// Changed observers fire when the range configuration changes, ValueChanged
// observers when the window position moves.
type Adjustment struct {
	value         float64
	lower         float64
	upper         float64
	stepIncrement float64
	pageIncrement float64
	pageSize      float64

	changed      notifier
	valueChanged notifier
}

// NewAdjustment returns an adjustment over [lower,upper] with the given
// window position and increments.
func NewAdjustment(value, lower, upper, stepIncrement, pageIncrement, pageSize float64) *Adjustment {
	a := &Adjustment{}
	a.Configure(value, lower, upper, stepIncrement, pageIncrement, pageSize)
	return a
}

func (a *Adjustment) Value() float64         { return a.value }
func (a *Adjustment) Lower() float64         { return a.lower }
func (a *Adjustment) Upper() float64         { return a.upper }
func (a *Adjustment) StepIncrement() float64 { return a.stepIncrement }
func (a *Adjustment) PageIncrement() float64 { return a.pageIncrement }
func (a *Adjustment) PageSize() float64      { return a.pageSize }

func (a *Adjustment) clamp(value float64) float64 {
	if max := a.upper - a.pageSize; value > max {
		value = max
	}
	if value < a.lower {
		value = a.lower
	}
	return value
}

// SetValue moves the window, clamped to [lower, upper-pageSize].
func (a *Adjustment) SetValue(value float64) {
	value = a.clamp(value)
	if value == a.value {
		return
	}
	a.value = value
	a.valueChanged.Notify()
}

// SetLower sets the lower limit of the range.
func (a *Adjustment) SetLower(lower float64) {
	if lower == a.lower {
		return
	}
	a.lower = lower
	a.changed.Notify()
}

// SetUpper sets the upper limit of the range.
func (a *Adjustment) SetUpper(upper float64) {
	if upper == a.upper {
		return
	}
	a.upper = upper
	a.changed.Notify()
}

// SetPageSize sets the size of the visible window.
func (a *Adjustment) SetPageSize(pageSize float64) {
	if pageSize == a.pageSize {
		return
	}
	a.pageSize = pageSize
	a.changed.Notify()
}

// Configure sets all six fields at once and emits a single change, plus a
// value change if the clamped value moved.
func (a *Adjustment) Configure(value, lower, upper, stepIncrement, pageIncrement, pageSize float64) {
	a.lower = lower
	a.upper = upper
	a.stepIncrement = stepIncrement
	a.pageIncrement = pageIncrement
	a.pageSize = pageSize

	value = a.clamp(value)
	valueMoved := value != a.value
	a.value = value

	a.changed.Notify()
	if valueMoved {
		a.valueChanged.Notify()
	}
}

// OnChanged connects a range-configuration observer and returns its id.
func (a *Adjustment) OnChanged(fn func()) int {
	return a.changed.Connect(fn)
}

// OnValueChanged connects a window-position observer and returns its id.
func (a *Adjustment) OnValueChanged(fn func()) int {
	return a.valueChanged.Connect(fn)
}

// RemoveOnChanged disconnects an OnChanged observer.
func (a *Adjustment) RemoveOnChanged(id int) {
	a.changed.Disconnect(id)
}

// RemoveOnValueChanged disconnects an OnValueChanged observer.
func (a *Adjustment) RemoveOnValueChanged(id int) {
	a.valueChanged.Disconnect(id)
}

package domain

// FilterCriteria selects the subset of a day's events to display.
// Platform is either PlatformAll or an exact platform id; NewOnly keeps only
// newly discovered events.
type FilterCriteria struct {
	Platform string
	NewOnly  bool
}

// DefaultCriteria matches every event.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Platform: PlatformAll}
}

// IsIdentity reports whether the criteria filter nothing out.
func (c FilterCriteria) IsIdentity() bool {
	return (c.Platform == "" || c.Platform == PlatformAll) && !c.NewOnly
}

// EventView is the per-event display record handed to the presentation
// surface. Details lists present-only attributes in fixed priority order.
type EventView struct {
	Time         string
	Title        string
	Content      string
	PlatformName string
	Stars        string
	IsNew        bool
	Details      []string
}

// RenderModel is the fully-derived, disposable structure the presentation
// surface draws. It is rebuilt wholesale on every filter or date change and
// its items are always a subset of the last retrieved event collection.
type RenderModel struct {
	TotalCount int
	NewCount   int
	Items      []EventView
}

package detail

// Tabs is the tabbed-content sub-state machine: one active tab at a
// time, each tab paired with the content pane sharing its identifier.
type Tabs struct {
	tabs  []string
	panes map[string]struct{}

	activeTab  string
	activePane string
}

// NewTabs builds the tab state. The initial active tab comes from
// whichever tab the surrounding layout marks active.
func NewTabs(tabIDs, paneIDs []string, initial string) *Tabs {
	panes := make(map[string]struct{}, len(paneIDs))
	for _, id := range paneIDs {
		panes[id] = struct{}{}
	}

	t := &Tabs{
		tabs:      tabIDs,
		panes:     panes,
		activeTab: initial,
	}
	if _, ok := panes[initial]; ok {
		t.activePane = initial
	}
	return t
}

// Activate deactivates every tab and pane, then activates the clicked
// tab and its matching pane. A tab without a matching pane leaves all
// panes inactive; that is not an error.
func (t *Tabs) Activate(id string) {
	t.activeTab = id
	t.activePane = ""
	if _, ok := t.panes[id]; ok {
		t.activePane = id
	}
}

// ActiveTab returns the active tab id.
func (t *Tabs) ActiveTab() string {
	return t.activeTab
}

// ActivePane returns the active pane id, empty when no pane matches.
func (t *Tabs) ActivePane() string {
	return t.activePane
}

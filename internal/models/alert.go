package models

// Alert is a staleness alert for a guard whose latest activity has been
// running past its kind threshold. Duration is whole minutes.
type Alert struct {
	Guard    string
	Label    string
	Duration int
}

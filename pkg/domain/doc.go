// Package domain contains the core entities of the exposure monitor: monitored
// subjects, the exposures recorded for them and the scans that discover those
// exposures. The types are free of infrastructure concerns so they can be
// shared by storage, orchestration and transport packages.
package domain

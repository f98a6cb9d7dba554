package config

import (
	"os"
	"path/filepath"
)

// CleanTarget describes a category of files a future cleanup engine would
// consider. The current application only displays the catalog; nothing is
// scanned or deleted.
type CleanTarget struct {
	// Name is the unique identifier for this target.
	Name string

	// Paths is the list of filesystem paths the target covers.
	Paths []string

	// Description is a human-readable description.
	Description string

	// Category groups related targets (e.g., "user", "system", "browser", "dev").
	Category string

	// RiskLevel is one of "low", "medium", "high".
	RiskLevel string
}

// homeDir returns the user's home directory, falling back to $HOME.
func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// home joins path elements under the user's home directory.
func home(elem ...string) string {
	return filepath.Join(append([]string{homeDir()}, elem...)...)
}

// DefaultTargets returns the built-in catalog of macOS cleanup targets.
func DefaultTargets() []CleanTarget {
	return []CleanTarget{
		{
			Name:        "user-caches",
			Paths:       []string{home("Library", "Caches")},
			Description: "Per-application cache files",
			Category:    "user",
			RiskLevel:   "low",
		},
		{
			Name:        "user-logs",
			Paths:       []string{home("Library", "Logs")},
			Description: "Application log files",
			Category:    "user",
			RiskLevel:   "low",
		},
		{
			Name:        "trash",
			Paths:       []string{home(".Trash")},
			Description: "Items in the Trash",
			Category:    "user",
			RiskLevel:   "low",
		},
		{
			Name:        "system-tmp",
			Paths:       []string{"/private/tmp", "/private/var/tmp"},
			Description: "System temporary files",
			Category:    "system",
			RiskLevel:   "medium",
		},
		{
			Name:        "safari-cache",
			Paths:       []string{home("Library", "Caches", "com.apple.Safari")},
			Description: "Safari browser cache",
			Category:    "browser",
			RiskLevel:   "low",
		},
		{
			Name: "chrome-cache",
			Paths: []string{
				home("Library", "Caches", "Google", "Chrome"),
				home("Library", "Application Support", "Google", "Chrome", "Default", "Cache"),
			},
			Description: "Google Chrome browser cache",
			Category:    "browser",
			RiskLevel:   "low",
		},
		{
			Name:        "xcode-derived-data",
			Paths:       []string{home("Library", "Developer", "Xcode", "DerivedData")},
			Description: "Xcode build intermediates",
			Category:    "dev",
			RiskLevel:   "medium",
		},
		{
			Name:        "homebrew-cache",
			Paths:       []string{home("Library", "Caches", "Homebrew")},
			Description: "Homebrew download cache",
			Category:    "dev",
			RiskLevel:   "low",
		},
		{
			Name:        "npm-cache",
			Paths:       []string{home(".npm", "_cacache")},
			Description: "npm package cache",
			Category:    "dev",
			RiskLevel:   "low",
		},
		{
			Name:        "ios-backups",
			Paths:       []string{home("Library", "Application Support", "MobileSync", "Backup")},
			Description: "Old iOS device backups",
			Category:    "system",
			RiskLevel:   "high",
		},
	}
}

// TargetsByCategory groups the catalog by category, preserving the order in
// which categories first appear.
func TargetsByCategory(targets []CleanTarget) (order []string, grouped map[string][]CleanTarget) {
	grouped = make(map[string][]CleanTarget)
	for _, t := range targets {
		if _, ok := grouped[t.Category]; !ok {
			order = append(order, t.Category)
		}
		grouped[t.Category] = append(grouped[t.Category], t)
	}
	return order, grouped
}

// Package fields stores the values a demand wizard collects. Values are flat
// strings keyed by field name; the six known names are exported as constants
// and Names returns them in the order the wizard prompts for them.
package fields

package terminal

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// weekday keys in storage order, aligned with time.Weekday values.
var weekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// HoursWindow is a daily opening window. Open is inclusive, Close is
// exclusive. Both are zero-padded HH:MM wall-clock values.
type HoursWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Validate checks window format and ordering.
func (w HoursWindow) Validate() error {
	if !hhmmPattern.MatchString(w.Open) {
		return fmt.Errorf("%w: open time %q must be HH:MM", ErrInvalidSettings, w.Open)
	}
	if !hhmmPattern.MatchString(w.Close) {
		return fmt.Errorf("%w: close time %q must be HH:MM", ErrInvalidSettings, w.Close)
	}
	if w.Open >= w.Close {
		return fmt.Errorf("%w: open time %s must be before close time %s", ErrInvalidSettings, w.Open, w.Close)
	}
	return nil
}

func (w HoursWindow) String() string {
	return w.Open + "-" + w.Close
}

// Settings holds per-terminal behavior configuration. Hours maps lowercase
// weekday keys (mon..sun) to opening windows. An empty Hours map means the
// terminal admits at any time of day.
type Settings struct {
	Sound *bool                   `json:"sound,omitempty"`
	Hours map[string]*HoursWindow `json:"hours,omitempty"`
}

// Validate checks all configured fields.
func (s Settings) Validate() error {
	for day, window := range s.Hours {
		if !isWeekdayKey(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSettings, day)
		}
		if window == nil {
			return fmt.Errorf("%w: weekday %q has no window", ErrInvalidSettings, day)
		}
		if err := window.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SoundEnabled reports the effective sound setting. Sound defaults to on.
func (s Settings) SoundEnabled() bool {
	if s.Sound == nil {
		return true
	}
	return *s.Sound
}

// Merge applies a partial settings update on top of the current settings.
// Scalar fields are replaced when set in the patch. Hours entries merge per
// weekday; a patch entry with a nil window removes that weekday's window.
func (s Settings) Merge(patch SettingsPatch) Settings {
	merged := Settings{
		Sound: s.Sound,
		Hours: make(map[string]*HoursWindow, len(s.Hours)),
	}
	for day, window := range s.Hours {
		if window != nil {
			w := *window
			merged.Hours[day] = &w
		}
	}

	if patch.Sound != nil {
		merged.Sound = patch.Sound
	}
	for day, window := range patch.Hours {
		if window == nil {
			delete(merged.Hours, day)
			continue
		}
		w := *window
		merged.Hours[day] = &w
	}
	if len(merged.Hours) == 0 {
		merged.Hours = nil
	}
	return merged
}

// SettingsPatch is a partial settings update. A Hours entry mapped to nil
// removes the window for that weekday.
type SettingsPatch struct {
	Sound *bool                   `json:"sound,omitempty"`
	Hours map[string]*HoursWindow `json:"hours,omitempty"`
}

// Validate checks all configured patch fields. Nil Hours entries are valid
// removal markers.
func (p SettingsPatch) Validate() error {
	for day, window := range p.Hours {
		if !isWeekdayKey(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSettings, day)
		}
		if window == nil {
			continue
		}
		if err := window.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// WithinHours decides whether the given instant falls inside the terminal's
// opening window, evaluated as wall-clock time in loc. The returned window
// string describes the day's configured window for denial messages.
func (s Settings) WithinHours(at time.Time, loc *time.Location) (bool, string) {
	if len(s.Hours) == 0 {
		return true, ""
	}
	local := at.In(loc)
	window, ok := s.Hours[weekdayKeys[local.Weekday()]]
	if !ok || window == nil {
		// A weekday without a configured window is unrestricted.
		return true, ""
	}
	clock := fmt.Sprintf("%02d:%02d", local.Hour(), local.Minute())
	if clock < window.Open || clock >= window.Close {
		return false, window.String()
	}
	return true, window.String()
}

func isWeekdayKey(day string) bool {
	for _, key := range weekdayKeys {
		if key == day {
			return true
		}
	}
	return false
}

// ParseWeekdayKey normalizes a weekday key to its canonical lowercase form.
func ParseWeekdayKey(day string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(day))
	if !isWeekdayKey(key) {
		return "", fmt.Errorf("%w: unknown weekday %q", ErrInvalidSettings, day)
	}
	return key, nil
}

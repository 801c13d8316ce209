// This file is part of Gopher800.
//
// Gopher800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher800.  If not, see <https://www.gnu.org/licenses/>.

package history

import (
	"github.com/gopher800/gopher800/paths"
	"github.com/gopher800/gopher800/prefs"
)

// Preferences for the history Store.
type Preferences struct {
	store *Store
	dsk   *prefs.Disk

	// snapshots are retained for every frame that is a multiple of Interval
	Interval prefs.Int

	// the maximum number of snapshots to retain before the earliest are
	// forgotten. zero means no limit
	MaxSnapshots prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// the default retention interval.
const defaultInterval = 10

// the default maximum number of snapshots. zero means every snapshot on the
// retention interval is kept for the whole session.
const defaultMaxSnapshots = 0

// newPreferences is the preferred method of initialisation for the Preferences
// type. If persist is true the preferences are loaded from and saved to the
// preferences file.
func newPreferences(store *Store, persist bool) (*Preferences, error) {
	p := &Preferences{store: store}

	p.Interval.SetRange(1, 100000)
	p.MaxSnapshots.SetRange(0, 1000000)

	err := p.Interval.Set(defaultInterval)
	if err != nil {
		return nil, err
	}
	err = p.MaxSnapshots.Set(defaultMaxSnapshots)
	if err != nil {
		return nil, err
	}

	if persist {
		pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}

		p.dsk, err = prefs.NewDisk(pth)
		if err != nil {
			return nil, err
		}

		err = p.dsk.Add("history.interval", &p.Interval)
		if err != nil {
			return nil, err
		}
		err = p.dsk.Add("history.maxSnapshots", &p.MaxSnapshots)
		if err != nil {
			return nil, err
		}

		err = p.dsk.Load(true)
		if err != nil {
			return nil, err
		}
	}

	p.MaxSnapshots.SetHookPost(func(_ prefs.Value) error {
		p.store.limit()
		return nil
	})

	return p, nil
}

// Load history preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current history preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

package requests

import "slices"

// floorSet is a sorted set of floors answering nearest-neighbour queries by binary search.
// Inserts are linear, which is fine for building-sized sets.
type floorSet struct {
	floors []int
}

// add inserts floor and reports whether it was new.
func (fs *floorSet) add(floor int) bool {
	i, found := slices.BinarySearch(fs.floors, floor)
	if found {
		return false
	}
	fs.floors = slices.Insert(fs.floors, i, floor)
	return true
}

// remove deletes floor and reports whether it was present.
func (fs *floorSet) remove(floor int) bool {
	i, found := slices.BinarySearch(fs.floors, floor)
	if !found {
		return false
	}
	fs.floors = slices.Delete(fs.floors, i, i+1)
	return true
}

func (fs *floorSet) contains(floor int) bool {
	_, found := slices.BinarySearch(fs.floors, floor)
	return found
}

// higher returns the first floor strictly above floor.
func (fs *floorSet) higher(floor int) (int, bool) {
	i, found := slices.BinarySearch(fs.floors, floor)
	if found {
		i++
	}
	if i < len(fs.floors) {
		return fs.floors[i], true
	}
	return 0, false
}

// lower returns the first floor strictly below floor.
func (fs *floorSet) lower(floor int) (int, bool) {
	i, _ := slices.BinarySearch(fs.floors, floor)
	if i > 0 {
		return fs.floors[i-1], true
	}
	return 0, false
}

func (fs *floorSet) hasAbove(floor int) bool {
	_, ok := fs.higher(floor)
	return ok
}

func (fs *floorSet) hasBelow(floor int) bool {
	_, ok := fs.lower(floor)
	return ok
}

func (fs *floorSet) empty() bool {
	return len(fs.floors) == 0
}

func (fs *floorSet) view() []int {
	return slices.Clone(fs.floors)
}

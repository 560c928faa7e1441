package zones

// Zone is a named group of machines sharing one reservation ceiling.
type Zone struct {
	ID      string
	Title   string
	First   int // first machine number, inclusive
	Last    int // last machine number, inclusive
	Ceiling int // max machines per booking
}

// Catalogue is fixed: the club floor plan is not runtime-configurable.
var Catalogue = []Zone{
	{ID: "izi", Title: "Изи-Лайн", First: 1, Last: 8, Ceiling: 8},
	{ID: "pro", Title: "Про-Лайн", First: 9, Last: 21, Ceiling: 13},
	{ID: "bootkemp", Title: "Буткемп", First: 22, Last: 26, Ceiling: 5},
	{ID: "ps4", Title: "PlayStation 4 зона", First: 27, Last: 27, Ceiling: 1},
	{ID: "ps5", Title: "PlayStation 5 зона", First: 28, Last: 28, Ceiling: 1},
}

// ByID returns the zone with the given id, or nil.
func ByID(id string) *Zone {
	for i := range Catalogue {
		if Catalogue[i].ID == id {
			return &Catalogue[i]
		}
	}
	return nil
}

// Machines lists the zone's machine numbers in ascending order.
func (z *Zone) Machines() []int {
	out := make([]int, 0, z.Last-z.First+1)
	for n := z.First; n <= z.Last; n++ {
		out = append(out, n)
	}
	return out
}

// Contains reports whether machine n belongs to the zone.
func (z *Zone) Contains(n int) bool {
	return n >= z.First && n <= z.Last
}

// SingleMachine reports whether the zone skips count and machine
// selection (ps4/ps5 console zones).
func (z *Zone) SingleMachine() bool {
	return z.Ceiling == 1
}

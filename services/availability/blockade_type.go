package availability

import "fmt"

// BlockadeType is the closed set of reasons a span can be blocked.
type BlockadeType int

const (
	Exception BlockadeType = iota + 1
	Booking
	Reservation
	Buffer
)

var blockadeTypeNames = map[BlockadeType]string{
	Exception:   "exception",
	Booking:     "booking",
	Reservation: "reservation",
	Buffer:      "buffer",
}

var blockadeTypesByName = map[string]BlockadeType{
	"exception":   Exception,
	"booking":     Booking,
	"reservation": Reservation,
	"buffer":      Buffer,
}

func ParseBlockadeType(s string) (BlockadeType, error) {
	t, ok := blockadeTypesByName[s]
	if !ok {
		return 0, fmt.Errorf("blockade type %q: %w", s, ErrInvalidArgument)
	}
	return t, nil
}

func (t BlockadeType) String() string {
	if name, ok := blockadeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BlockadeType(%d)", int(t))
}

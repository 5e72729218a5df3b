package dal

// Part names a replaceable car component.
type Part int

const (
	PartEngine Part = iota + 1
	PartTransmission
	PartDrivetrain
)

var partNames = map[Part]string{
	PartEngine:       "engine",
	PartTransmission: "transmission",
	PartDrivetrain:   "drivetrain",
}

func (p Part) String() string {
	if name, ok := partNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePart maps a part name to its Part. Names are matched exactly.
func ParsePart(name string) (Part, error) {
	for p, n := range partNames {
		if n == name {
			return p, nil
		}
	}
	return 0, &InvalidPartError{Part: name}
}

// PartNames lists the accepted part names in declaration order.
func PartNames() []string {
	return []string{PartEngine.String(), PartTransmission.String(), PartDrivetrain.String()}
}

package engine

// Defensive positions are numbered 1-9 in scorekeeping order. Sheets use
// either the number or the letter code, so both are accepted everywhere a
// position is tested.
const (
	posPitcher   = 1
	posCatcher   = 2
	posFirstBase = 3
	posRightField = 9
)

var positionNumbers = map[string]int{
	"P": 1, "C": 2, "1B": 3, "2B": 4, "3B": 5,
	"SS": 6, "LF": 7, "CF": 8, "RF": 9,
	"1": 1, "2": 2, "3": 3, "4": 4, "5": 5,
	"6": 6, "7": 7, "8": 8, "9": 9,
}

var positionCodes = [...]string{1: "P", 2: "C", 3: "1B", 4: "2B", 5: "3B", 6: "SS", 7: "LF", 8: "CF", 9: "RF"}

// PositionNumber returns the 1-9 scorekeeping number for a position code, or
// zero for non-defensive roles (DH, pinch hitter/runner) and unknown codes.
func PositionNumber(pos string) int {
	return positionNumbers[pos]
}

// PositionCode returns the canonical letter code for a position, preserving
// unknown input untouched.
func PositionCode(pos string) string {
	if n := positionNumbers[pos]; n >= posPitcher && n <= posRightField {
		return positionCodes[n]
	}
	return pos
}

// IsDefensive reports whether pos is one of the nine fielding positions.
// Designated hitters and pinch roles are not.
func IsDefensive(pos string) bool {
	return PositionNumber(pos) != 0
}

// IsPitcher reports whether pos is the pitcher position.
func IsPitcher(pos string) bool {
	return PositionNumber(pos) == posPitcher
}

// IsCatcher reports whether pos is the catcher position.
func IsCatcher(pos string) bool {
	return PositionNumber(pos) == posCatcher
}

package path

import (
	"strconv"
	"strings"

	"github.com/scenekit/scenekit/pkg/generic"
)

// Delimiters shared with the rest of the save system. Decimal float text never
// contains either character, so encoded coordinates need no escaping.
const (
	nodeDelimiter  = "|"
	fieldDelimiter = ":"
)

var builderPool = generic.NewPool(func() *strings.Builder {
	return &strings.Builder{}
})

// EncodeNodes renders an ordered node list as "x1:y1:z1|x2:y2:z2|...". The
// final node carries no trailing delimiter and an empty list encodes to "".
func EncodeNodes(nodes []Vector3) string {
	if len(nodes) == 0 {
		return ""
	}

	sb := builderPool.Get()
	defer func() {
		sb.Reset()
		builderPool.Put(sb)
	}()

	for i, node := range nodes {
		if i > 0 {
			sb.WriteString(nodeDelimiter)
		}
		sb.WriteString(formatCoord(node.X))
		sb.WriteString(fieldDelimiter)
		sb.WriteString(formatCoord(node.Y))
		sb.WriteString(fieldDelimiter)
		sb.WriteString(formatCoord(node.Z))
	}
	return sb.String()
}

// DecodeNodes rebuilds target's node list from its encoded form. The target
// is always reset to decode defaults first, whatever data holds. Malformed
// coordinate fields decode to 0 rather than failing; old save files depend on
// that leniency.
func DecodeNodes(target *Path, data string) *Path {
	target.Reset()
	if data == "" {
		return target
	}

	for _, chunk := range strings.Split(data, nodeDelimiter) {
		fields := strings.Split(chunk, fieldDelimiter)
		target.Nodes = append(target.Nodes, Vector3{
			X: parseCoord(fields, 0),
			Y: parseCoord(fields, 1),
			Z: parseCoord(fields, 2),
		})
	}
	return target
}

func formatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func parseCoord(fields []string, i int) float32 {
	if i >= len(fields) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 32)
	if err != nil {
		return 0
	}
	return float32(v)
}

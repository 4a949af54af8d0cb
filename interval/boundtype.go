package interval

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// BoundType indicates whether the value of an EndPoint is contained in the Interval itself ("closed") or not
// ("open"). If an Interval is unbounded on a side, it is neither open nor closed on that side; the bound simply
// does not exist.
type BoundType uint8

const (
	// BoundTypeOpen indicates that the EndPoint value is not considered part of the Interval ("exclusive").
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the EndPoint value is considered part of the Interval ("inclusive").
	BoundTypeClosed
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeOpen",
	"BoundTypeClosed",
}

// BoundTypeFromMarshalUtil unmarshals a BoundType using a MarshalUtil (for easier unmarshalling).
func BoundTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (boundType BoundType, err error) {
	boundTypeByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Wrapf(ErrParseBytesFailed, "failed to read BoundType: %s", err)

		return
	}

	if boundType = BoundType(boundTypeByte); boundType > BoundTypeClosed {
		err = errors.Wrapf(ErrParseBytesFailed, "unsupported BoundType (%X)", boundType)

		return
	}

	return
}

// Inclusive returns true if the EndPoint value itself belongs to the Interval.
func (b BoundType) Inclusive() bool {
	return b == BoundTypeClosed
}

// Invert returns the BoundType that represents the opposite inclusivity.
func (b BoundType) Invert() BoundType {
	if b == BoundTypeOpen {
		return BoundTypeClosed
	}

	return BoundTypeOpen
}

// Bytes returns a marshaled version of the BoundType.
func (b BoundType) Bytes() []byte {
	return []byte{byte(b)}
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}

package metadata

import "fmt"

// AssetID is the display identifier printed on a device record, derived from
// the store row count at creation time. Count-based generation is not
// collision-proof once records are removed out of order; that behavior is
// kept on purpose.
type AssetID struct {
	prefix string
	seq    int
}

const Prefix string = "ASSET"

func NewAssetID(seq int) AssetID {
	return AssetID{
		prefix: Prefix,
		seq:    seq,
	}
}

// Generate renders the 5-digit zero-padded form, e.g. ASSET_00042.
func (a AssetID) Generate() string {
	return fmt.Sprintf("%s_%05d", a.prefix, a.seq)
}

//go:build ctrx_enable_padding

package opt

// PaddingMult_ scales the pad inserted before each counter stripe.
// Padding is force-enabled via the ctrx_enable_padding build tag.
// Use: go build -tags=ctrx_enable_padding
const PaddingMult_ = 1

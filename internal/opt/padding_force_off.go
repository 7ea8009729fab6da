//go:build ctrx_disable_padding && !ctrx_enable_padding

package opt

// PaddingMult_ scales the pad inserted before each counter stripe.
// Padding is force-disabled via the ctrx_disable_padding build tag.
// Use: go build -tags=ctrx_disable_padding
const PaddingMult_ = 0

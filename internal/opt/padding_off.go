//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !ctrx_disable_padding && !ctrx_enable_padding

package opt

// PaddingMult_ scales the pad inserted before each counter stripe.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
const PaddingMult_ = 0

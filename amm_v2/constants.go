package ammv2

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the v2 amm program address.
var ProgramID = solanago.MustPublicKeyFromBase58("2wT8Yq49kHgDzXuPxZSaeLaH1qbmGXtEyPy64bL7aD3c")

package ammv1

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the v1 amm program address.
var ProgramID = solanago.MustPublicKeyFromBase58("EewxydAPCCVuNEyrVN68PuSYdQ7wKn27V9Gjeoi8dy3S")

package searcher

// Hyperparameters for alpha-beta search

// Depth at which states are evaluated instead of expanded
const MaxDepth = 4

// Initial running best at max nodes and at the root. Child scores below it are
// never recorded, so a root whose moves all score below it decides on no move.
const ZeroFloor = 0

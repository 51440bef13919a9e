package addrset

const (
	defaultFalsePositiveRate = 0.000001
	defaultCapacityMargin    = 1_000_000
	defaultBatchSize         = 100_000
	defaultProgressEvery     = 1_000_000

	invalidLogLimit = 10
)

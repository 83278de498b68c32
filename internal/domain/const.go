package domain

const (
	// FULL_ALLOCATION is the percentage every user's active allocations must add up to
	FULL_ALLOCATION = 100

	// DEFAULT_PERCENTAGE_PRECISION is the number of decimal places kept for percentages
	DEFAULT_PERCENTAGE_PRECISION = 2
	// MAX_PERCENTAGE_PRECISION is the scale of the percentage columns, NUMERIC(5,2)
	MAX_PERCENTAGE_PRECISION = 2

	// DEFAULT_MAX_PROJECTS is the default limit of distinct projects per user
	DEFAULT_MAX_PROJECTS = 20

	// DEFAULT_MAXIMUM_REWARD_SHARE is the default cap on a single project's share of a matching pool
	DEFAULT_MAXIMUM_REWARD_SHARE = 0.2

	// DonationStatusVerified is the only donation status counted by matching
	DonationStatusVerified = "verified"
)

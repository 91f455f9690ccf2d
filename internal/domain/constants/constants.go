package constants

// Pub/Sub provider names accepted in the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cart event types published after a cart mutation commits.
const (
	CartEventItemAdded   = "cart.item_added"
	CartEventItemUpdated = "cart.item_updated"
	CartEventItemMerged  = "cart.item_merged"
	CartEventItemRemoved = "cart.item_removed"
	CartEventCartClosed  = "cart.closed"
)

// Listing strategy names, in the order they are evaluated.
const (
	ListingByCategory = "category"
	ListingByGoal     = "goal"
	ListingByNewFlag  = "new"
)

// NewArrivalsToken is the sort token selecting products flagged as new.
const NewArrivalsToken = "new"

package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every forge metric
const Namespace = "swordforge"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Forge metric names
const (
	MetricNameItemsCrafted      = "items_crafted_total"
	MetricNameAttributeRolls    = "attribute_rolls_total"
	MetricNameItemValue         = "item_value"
	MetricNameEnchantmentCount  = "item_enchantments"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameUpgradesPurchased = "upgrades_purchased_total"
	MetricNameUpgradeLevel      = "upgrade_level"
	MetricNameOptionsRetired    = "options_retired_total"
	MetricNameMoneyEarned       = "money_earned_total"
	MetricNameMoneySpent        = "money_spent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Forge metric help text
const (
	HelpTextItemsCrafted      = "Total number of items crafted"
	HelpTextAttributeRolls    = "Number of times each option was rolled per category"
	HelpTextItemValue         = "Value of crafted items"
	HelpTextEnchantmentCount  = "Number of enchantments on crafted items"
	HelpTextItemsSold         = "Total number of items sold"
	HelpTextUpgradesPurchased = "Total number of upgrade levels purchased"
	HelpTextUpgradeLevel      = "Current upgrade level per category"
	HelpTextOptionsRetired    = "Total number of options retired from the draw pool"
	HelpTextMoneyEarned       = "Total money earned from selling items"
	HelpTextMoneySpent        = "Total money spent on upgrades"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelCategory = "category"
	LabelOption   = "option"
	LabelSource   = "source"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ItemValueBuckets spans item values from a bare craft up to ones carrying
// extreme multipliers.
var ItemValueBuckets = []float64{10, 100, 1e3, 1e4, 1e5, 1e6, 1e8, 1e10, 1e12, 1e15}

// EnchantmentBuckets has one bucket per possible enchantment count.
var EnchantmentBuckets = []float64{0, 1, 2, 3}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

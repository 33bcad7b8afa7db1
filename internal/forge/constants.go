package forge

import "time"

// Defaults used when Config fields are left zero
const (
	DefaultSellCountdown = 30 * time.Second
	DefaultSellRackSize  = 256
)

// walletLockKey serialises purchases against the single wallet
const walletLockKey = "wallet"

// Log messages
const (
	LogMsgItemCrafted        = "Item crafted"
	LogMsgItemSold           = "Item sold"
	LogMsgItemAutoSold       = "Item auto-sold"
	LogMsgUpgradePurchased   = "Upgrade purchased"
	LogMsgUpgradeRejected    = "Upgrade rejected"
	LogMsgPlayerLevelUp      = "Player levelled up"
	LogMsgEventPublishFailed = "Failed to publish event"
	LogMsgRackDrained        = "Sell rack drained"
)

package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The storefront frontend maps these codes to user-facing messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed request body
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // malformed identifier

	// ==================== Cart (CART_) ====================
	CartInvalidQuantity       = "CART_INVALID_QUANTITY"        // quantity outside 1..1000
	CartItemNotFound          = "CART_ITEM_NOT_FOUND"          // no line item for product
	CartInvalidDeliveryOption = "CART_INVALID_DELIVERY_OPTION" // unknown delivery option id

	// ==================== Catalog (CATALOG_) ====================
	CatalogProductNotFound = "CATALOG_PRODUCT_NOT_FOUND" // product absent from snapshot
	CatalogRefreshFailed   = "CATALOG_REFRESH_FAILED"    // refresh could not complete

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError  = "INTERNAL_SERVER_ERROR"  // unexpected failure
	InternalStorageError = "INTERNAL_STORAGE_ERROR" // cart slot read/write failure
)

// Package readers extracts the names of supported smart-card readers from a
// CCID supported readers config.
//
// The config is line oriented:
//
//	# section: supported
//	# any other comment
//	072F:90CC:ACS ACR 38U-CCID
//
// Reader lines are "vendor_id:product_id:name". A reader belongs to the
// section introduced by the closest preceding "# section:" header. Only
// readers from the accepted sections ("supported" and "shouldwork" by
// default) are kept. A name is attributed to the first section that lists it;
// later occurrences are ignored wherever they appear.
package readers

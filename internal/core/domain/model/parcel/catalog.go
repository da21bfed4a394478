package parcel

// CarrierAmazon is the carrier subject to the restricted slot subset of the
// storage grid. Carrier remains free text on records; this constant only
// anchors the placement rule and the known-carrier listing.
const CarrierAmazon = "Amazon"

// ColorLabelRed is the quarantine label auto-applied when intake cannot
// match the recipient against the directory. It is operator signaling only;
// the derived quarantine state is computed from the match result.
const ColorLabelRed = "red"

// KnownCarriers lists the carriers offered on the intake form. "Otro"
// covers anything else; records store whatever string was entered.
func KnownCarriers() []string {
	return []string{
		"Amazon",
		"Mercado Libre",
		"DHL",
		"J&T",
		"Estafeta",
		"UPS",
		"Correos de México",
		"FedEx",
		"Otro",
	}
}

// KnownSizes lists the size display names in ascending bulk order.
func KnownSizes() []string {
	return []string{SizeSmall.String(), SizeMedium.String(), SizeLarge.String()}
}

// KnownCategories lists the package categories offered on the intake form.
func KnownCategories() []string {
	return []string{"Caja", "Sobre", "Paquete", "Bolsa", "Otro"}
}

// KnownColorLabels lists the fixed color label palette.
func KnownColorLabels() []string {
	return []string{
		"red", "blue", "green", "yellow", "purple", "orange",
		"pink", "cyan", "indigo", "lime", "brown", "gray",
	}
}

// IsKnownColorLabel reports whether label belongs to the fixed palette.
// The empty string is not a label; callers treat it as "no label".
func IsKnownColorLabel(label string) bool {
	for _, known := range KnownColorLabels() {
		if known == label {
			return true
		}
	}
	return false
}

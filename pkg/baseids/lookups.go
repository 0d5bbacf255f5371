// Package baseids builds the auxiliary lookup maps used to resolve
// Salesforce surrogate IDs when emitting insert instructions for records
// that exist only on the Locavia side.
package baseids

import "github.com/irisfleet/fleetrecon/pkg/records"

// Record-type discriminator tags as they appear in the upstream registry.
// RecordTypeOption is genuinely spelled "IRIS_Opicionais" in the source
// data; it must be matched verbatim.
const (
	RecordTypeDevice = "IRIS_Dispositivo"
	RecordTypeColor  = "IRIS_Cores"
	RecordTypeOption = "IRIS_Opicionais"
)

// Lookups maps normalized natural keys to Salesforce surrogate IDs,
// partitioned by registry record type.
type Lookups struct {
	// DeviceByModelCode and DeviceByLocaviaID only contain devices whose
	// not-commercialized flag is explicitly false; records where the flag
	// is absent or true must never be used as insert targets.
	DeviceByModelCode map[string]string
	DeviceByLocaviaID map[string]string
	ColorByColorCode  map[string]string
	OptionByLocaviaID map[string]string
}

// Build indexes the registry in a single pass. Later records with the same
// key overwrite earlier ones; rows with an unknown record-type tag are
// excluded from all maps.
func Build(base []records.BaseID) *Lookups {
	l := &Lookups{
		DeviceByModelCode: make(map[string]string),
		DeviceByLocaviaID: make(map[string]string),
		ColorByColorCode:  make(map[string]string),
		OptionByLocaviaID: make(map[string]string),
	}

	for _, r := range base {
		switch r.RecordType {
		case RecordTypeDevice:
			if r.NotCommercialized == nil || *r.NotCommercialized {
				continue
			}
			if r.IntegrationModelCode != "" && r.ID != "" {
				l.DeviceByModelCode[r.IntegrationModelCode] = r.ID
			}
			if r.LocaviaID != "" && r.ID != "" {
				l.DeviceByLocaviaID[r.LocaviaID] = r.ID
			}
		case RecordTypeColor:
			if r.ColorCode != "" && r.ID != "" {
				l.ColorByColorCode[r.ColorCode] = r.ID
			}
		case RecordTypeOption:
			if r.LocaviaID != "" && r.ID != "" {
				l.OptionByLocaviaID[r.LocaviaID] = r.ID
			}
		}
	}

	return l
}

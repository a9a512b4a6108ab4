package hermes

const (
	SubjectAll           = "cers.>"
	SubjectCatalogLoaded = "cers.catalog.loaded"

	HeaderContentType = "Content-Type"

	StreamName   = "CERS_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectExportGenerated(format string) string { return "cers.export." + format + ".generated" }

package test

// Manifest is a small GResource manifest with one stale flag entry.
const Manifest = `<?xml version="1.0" encoding="UTF-8"?>
<gresources>
  <gresource prefix="/org/example/clip">
    <file>assets/icons/logo.png</file>
    <file>assets/data/svg/zz.svg</file>
    <file preprocess="xml-stripblanks">ui/window.ui</file>
  </gresource>
</gresources>
`

// Upstream is a country API payload covering the interesting dial code cases.
const Upstream = `[
  {"name": {"common": "Germany"}, "cca2": "DE", "idd": {"root": "+4", "suffixes": ["9"]}, "flags": {"svg": "https://flags.test/de.svg"}},
  {"name": {"common": "United States"}, "cca2": "US", "idd": {"root": "+1", "suffixes": ["201", "202"]}, "flags": {"svg": "https://flags.test/us.svg"}},
  {"name": {"common": "Antarctica"}, "cca2": "AQ", "idd": {}, "flags": {"svg": "https://flags.test/aq.svg"}},
  {"name": {"common": "France"}, "cca2": "FR", "idd": {"root": "+3", "suffixes": ["3"]}, "flags": {"png": "https://flags.test/fr.png"}}
]`

// DataFile is an extension data file wrapped in a "data" envelope.
const DataFile = `{"data": [
  {"name": "Coffee", "keywords": ["hot", "drink"], "char": "☕"},
  {"name": "Say \"hi\"", "description": "Greeting", "nested": {"name": "Wave"}}
]}`

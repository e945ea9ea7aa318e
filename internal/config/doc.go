// Package config loads the optional YAML configuration of the quizdeck CLI.
//
// A config file only needs the keys it changes:
//
//	output:
//	  path: decks/networking.json
//	symbol:
//	  marker: "©"
//	  fallbackMarker: "@"
//	  correctToken: ff
//	  sectionPrefix: knowledge assessment
package config

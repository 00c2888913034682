// Package editors provides the property editor registry: which view renders
// a value, how its value is stored, and which configuration fields its data
// types carry. Editors are declared in YAML:
//
//	editors:
//	  - alias: Umbraco.TextBox
//	    name: Textbox
//	    view: textbox
//	    value_type: STRING
//	    config_fields:
//	      - key: maxChars
//	        name: Maximum allowed characters
//	        view: number
//	    default_config:
//	      maxChars: 512
//
// A built-in set is embedded and returned by Default. Unknown aliases fall
// back to the read-only label editor.
package editors

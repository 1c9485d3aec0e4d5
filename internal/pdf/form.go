package pdf

import (
	"encoding/json"
	"sort"
)

// mergeCampos toma el JSON del formulario exportado por pdfcpu y escribe en
// cada textfield el valor cuyo nombre coincida en campos. Devuelve el JSON
// listo para FillForm y la lista de claves de campos que no existen en la
// plantilla. El resto del documento JSON se conserva tal cual.
func mergeCampos(formJSON []byte, campos map[string]string) ([]byte, []string, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(formJSON, &doc); err != nil {
		return nil, nil, err
	}

	enPlantilla := map[string]bool{}

	forms, _ := doc["forms"].([]interface{})
	for _, f := range forms {
		form, ok := f.(map[string]interface{})
		if !ok {
			continue
		}
		textfields, _ := form["textfield"].([]interface{})
		for _, tf := range textfields {
			field, ok := tf.(map[string]interface{})
			if !ok {
				continue
			}
			name, _ := field["name"].(string)
			if name == "" {
				if id, ok := field["id"].(string); ok {
					name = id
				}
			}
			if name == "" {
				continue
			}
			enPlantilla[name] = true
			if valor, ok := campos[name]; ok {
				field["value"] = valor
			}
		}
	}

	var omitidos []string
	for clave := range campos {
		if !enPlantilla[clave] {
			omitidos = append(omitidos, clave)
		}
	}
	sort.Strings(omitidos)

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, err
	}
	return out, omitidos, nil
}

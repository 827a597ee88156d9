// Package utils provides utility functions for template processing.
package utils

// DeepMerge merges two maps recursively.
func DeepMerge(dst, src map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for k, v := range dst {
		result[k] = v
	}
	for k, v := range src {
		if dstV, ok := result[k]; ok {
			if dstMap, ok := dstV.(map[string]interface{}); ok {
				if srcMap, ok := v.(map[string]interface{}); ok {
					result[k] = DeepMerge(dstMap, srcMap)
					continue
				}
			}
		}
		result[k] = v
	}
	return result
}

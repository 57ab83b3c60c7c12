package vkinit

import "strings"

// checkNativeString rejects strings that cannot cross the driver boundary as
// NUL-terminated C strings.
func checkNativeString(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &StringConversionError{Value: s, Offset: i}
	}
	return nil
}

func checkRequestStrings(req *InstanceCreationRequest) error {
	names := make([]string, 0, 2+len(req.ExtensionNames)+len(req.EnabledLayerNames))
	names = append(names, req.App.Name, req.App.EngineName)
	names = append(names, req.ExtensionNames...)
	names = append(names, req.EnabledLayerNames...)
	for _, name := range names {
		if err := checkNativeString(name); err != nil {
			return err
		}
	}
	return nil
}

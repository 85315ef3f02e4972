package assetskema

import eng "github.com/reoring/assetskema/internal/engine"

// DetectJSONDuplicateKeysBytes reports every duplicated object key in data as a
// duplicate_key issue at the pointer of the repeated member. maxIssues < 0
// means unlimited.
func DetectJSONDuplicateKeysBytes(data []byte, maxIssues int) (Issues, error) {
	si, err := eng.DetectJSONDuplicateKeysBytes(data, eng.DupWarn, maxIssues)
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		it := Issue{Code: s.Code, Path: s.Path, Message: s.Message}
		if s.Code == CodeDuplicateKey {
			it.Params = map[string]any{ParamKey: lastSegment(s.Path)}
		}
		iss = AppendIssues(iss, it)
	}
	return iss
}

func lastSegment(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return unescapePointer(p[i+1:])
		}
	}
	return p
}

func unescapePointer(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '~' && i+1 < len(s) {
			switch s[i+1] {
			case '0':
				out = append(out, '~')
				i++
				continue
			case '1':
				out = append(out, '/')
				i++
				continue
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}

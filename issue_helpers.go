package assetskema

// Rebase returns a copy of iss with every path moved under base.
func Rebase(base PathRef, iss Issues) Issues {
	prefix := base.Pointer()
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		it.Path = JoinPointer(prefix, it.Path)
		out = append(out, it)
	}
	return out
}

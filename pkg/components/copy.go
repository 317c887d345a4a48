package components

// Clone returns a deep copy of the component. Every list, map, and
// sub-entity container is freshly allocated: after a merge no slice or map
// may be shared between two components.
func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Category = copyStrings(c.Category)
	clone.Language = copyStrings(c.Language)
	clone.Dependencies = copyStrings(c.Dependencies)
	clone.Restrictions = copyStrings(c.Restrictions)
	clone.InstallBefore = copyStrings(c.InstallBefore)
	clone.InstallAfter = copyStrings(c.InstallAfter)
	clone.Links = CloneLinks(c.Links)
	clone.Instructions = CloneInstructions(c.Instructions)
	clone.Options = CloneOptions(c.Options)
	return &clone
}

// Clone returns a deep copy of the instruction with fresh Source,
// Dependencies, and Restrictions slices.
func (in *Instruction) Clone() *Instruction {
	if in == nil {
		return nil
	}

	clone := *in
	clone.Source = copyStrings(in.Source)
	clone.Dependencies = copyStrings(in.Dependencies)
	clone.Restrictions = copyStrings(in.Restrictions)
	return &clone
}

// Clone returns a deep copy of the option, including its nested
// instruction list.
func (o *Option) Clone() *Option {
	if o == nil {
		return nil
	}

	clone := *o
	clone.Restrictions = copyStrings(o.Restrictions)
	clone.Dependencies = copyStrings(o.Dependencies)
	clone.Instructions = CloneInstructions(o.Instructions)
	return &clone
}

// CloneInstructions deep-copies an instruction list.
// Returns nil if the input list is nil.
func CloneInstructions(ins []*Instruction) []*Instruction {
	if ins == nil {
		return nil
	}

	result := make([]*Instruction, 0, len(ins))
	for _, in := range ins {
		result = append(result, in.Clone())
	}
	return result
}

// CloneOptions deep-copies an option list.
// Returns nil if the input list is nil.
func CloneOptions(opts []*Option) []*Option {
	if opts == nil {
		return nil
	}

	result := make([]*Option, 0, len(opts))
	for _, o := range opts {
		result = append(result, o.Clone())
	}
	return result
}

// CloneLinks deep-copies a link map, allocating a fresh FileMap per URL.
// Returns nil if the input map is nil.
func CloneLinks(links map[string]FileMap) map[string]FileMap {
	if links == nil {
		return nil
	}

	result := make(map[string]FileMap, len(links))
	for url, files := range links {
		result[url] = CloneFileMap(files)
	}
	return result
}

// CloneFileMap deep-copies one filename map.
// Returns nil if the input map is nil.
func CloneFileMap(files FileMap) FileMap {
	if files == nil {
		return nil
	}

	result := make(FileMap, len(files))
	for name, flag := range files {
		result[name] = flag
	}
	return result
}

// CloneList deep-copies an ordered component list.
// Returns nil if the input list is nil.
func CloneList(list []*Component) []*Component {
	if list == nil {
		return nil
	}

	result := make([]*Component, 0, len(list))
	for _, c := range list {
		result = append(result, c.Clone())
	}
	return result
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

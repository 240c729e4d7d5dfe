package domain

// Plan is the outcome of one dry-run invocation: the packages the manager
// would install or upgrade, and the packages it would drop, each in the
// order the manager announced them.
type Plan struct {
	Install []*Package
	Remove  []*Package
}

// Empty reports whether the dry run produced no kernel module packages on
// either side of the transaction.
func (p *Plan) Empty() bool {
	return len(p.Install) == 0 && len(p.Remove) == 0
}

package jsonschema

// ifValidator implements "if"/"then"/"else". "then" and "else" never
// register their own keywordCompiler entries — they are consulted here as
// siblings of "if" the same way Draft4's exclusiveMinimum/exclusiveMaximum
// are consulted as siblings of minimum/maximum.
type ifValidator struct {
	ifValidators   []Validator
	thenValidators []Validator
	elseValidators []Validator
	hasThen        bool
	hasElse        bool
}

func (v *ifValidator) ifPasses(instance *Value) bool {
	for _, sub := range v.ifValidators {
		if !sub.IsValid(instance) {
			return false
		}
	}
	return true
}

func (v *ifValidator) IsValid(instance *Value) bool {
	if v.ifPasses(instance) {
		if !v.hasThen {
			return true
		}
		for _, sub := range v.thenValidators {
			if !sub.IsValid(instance) {
				return false
			}
		}
		return true
	}
	if !v.hasElse {
		return true
	}
	for _, sub := range v.elseValidators {
		if !sub.IsValid(instance) {
			return false
		}
	}
	return true
}

func (v *ifValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	branch := v.elseValidators
	active := v.hasElse
	if v.ifPasses(instance) {
		branch, active = v.thenValidators, v.hasThen
	}
	if !active {
		return noError()
	}
	var iters []ErrorIterator
	for _, sub := range branch {
		iters = append(iters, sub.Validate(instance, path))
	}
	return chain(iters...)
}

func (v *ifValidator) Name() string { return "if" }

func compileIf(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	ifValidators, err := compileValidators(value, ctx)
	if err != nil {
		return nil, false, err
	}
	v := &ifValidator{ifValidators: ifValidators}
	if thenSchema, ok := parent.ObjectGet("then"); ok {
		validators, err := compileValidators(thenSchema, ctx)
		if err != nil {
			return nil, false, err
		}
		v.thenValidators = validators
		v.hasThen = true
	}
	if elseSchema, ok := parent.ObjectGet("else"); ok {
		validators, err := compileValidators(elseSchema, ctx)
		if err != nil {
			return nil, false, err
		}
		v.elseValidators = validators
		v.hasElse = true
	}
	return v, true, nil
}

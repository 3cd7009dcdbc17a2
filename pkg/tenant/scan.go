package tenant

import (
	pg_query "github.com/pganalyze/pg_query_go/v6"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// treeFacts are order-independent facts gathered in one generic pass
type treeFacts struct {
	nodeCount   int
	maxParamRef int32
	hasWindow   bool
}

func scanFacts(result *pg_query.ParseResult) treeFacts {
	facts := treeFacts{}
	inspect(result.ProtoReflect(), func(m protoreflect.Message) {
		facts.nodeCount++
		switch m.Descriptor().Name() {
		case "WindowDef":
			facts.hasWindow = true
		case "FuncCall":
			if fc, ok := m.Interface().(*pg_query.FuncCall); ok && fc.Over != nil {
				facts.hasWindow = true
			}
		case "ParamRef":
			if pr, ok := m.Interface().(*pg_query.ParamRef); ok && pr.Number > facts.maxParamRef {
				facts.maxParamRef = pr.Number
			}
		}
	})
	return facts
}

func inspect(m protoreflect.Message, visit func(protoreflect.Message)) {
	visit(m)
	m.Range(func(fd protoreflect.FieldDescriptor, v protoreflect.Value) bool {
		switch {
		case fd.IsList() && fd.Kind() == protoreflect.MessageKind:
			list := v.List()
			for i := 0; i < list.Len(); i++ {
				inspect(list.Get(i).Message(), visit)
			}
		case fd.IsMap():
		case fd.Kind() == protoreflect.MessageKind:
			inspect(v.Message(), visit)
		}
		return true
	})
}

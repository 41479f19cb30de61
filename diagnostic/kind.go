package diagnostic

// Kind identifies the specific rule a Diagnostic reports a violation of. The
// three tiers from spec §7 (syntax, build, validation) all render through
// the same Diagnostic shape; Kind tells them apart and drives deterministic
// sort order alongside the primary span.
type Kind int

const (
	// Syntax errors (tier 1) are not represented as Kind values at all —
	// the parser reports them as plain {span, message} pairs (§6.1) before
	// any Kind taxonomy applies. Kind starts at the build-error tier.
	_ Kind = iota

	// Build errors (tier 2, §7).
	KindExecutableDefinitionInTypeSystem
	KindSchemaDefinitionCollision
	KindDirectiveDefinitionCollision
	KindTypeDefinitionCollision
	KindBuiltInScalarTypeRedefinition
	KindOrphanSchemaExtension
	KindOrphanTypeExtension
	KindTypeExtensionKindMismatch
	KindDuplicateRootOperation
	KindDuplicateImplementsInterfaceInObject
	KindDuplicateImplementsInterfaceInInterface
	KindObjectFieldNameCollision
	KindInterfaceFieldNameCollision
	KindInputFieldNameCollision
	KindEnumValueNameCollision
	KindUnionMemberNameCollision
	KindDuplicateOperationName
	KindDuplicateFragmentName

	// Validation errors (tier 3, §7).
	KindUndefinedType
	KindUndefinedField
	KindUndefinedDirective
	KindUndefinedFragment
	KindUndefinedVariable
	KindUnusedVariable
	KindUndefinedArgument
	KindMissingRequiredArgument
	KindMissingRequiredField
	KindInputCoercion
	KindOutputTypeExpected
	KindInputTypeExpected
	KindInterfaceFieldSignatureMismatch
	KindInterfaceImplementationCycle
	KindFragmentCycle
	KindFragmentTypeConditionMismatch
	KindInlineFragmentTypeConditionMismatch
	KindFieldMergeConflict
	KindLeafFieldHasSelection
	KindCompositeFieldMissingSelection
	KindIntrospectionMisuse
	KindAnonymousOperationNotAlone
	KindNonRepeatableDirectiveRepeated
	KindDirectiveLocationMismatch
)

var kindNames = map[Kind]string{
	KindExecutableDefinitionInTypeSystem:         "ExecutableDefinition",
	KindSchemaDefinitionCollision:                "SchemaDefinitionCollision",
	KindDirectiveDefinitionCollision:             "DirectiveDefinitionCollision",
	KindTypeDefinitionCollision:                  "TypeDefinitionCollision",
	KindBuiltInScalarTypeRedefinition:            "BuiltInScalarTypeRedefinition",
	KindOrphanSchemaExtension:                    "OrphanSchemaExtension",
	KindOrphanTypeExtension:                      "OrphanTypeExtension",
	KindTypeExtensionKindMismatch:                "TypeExtensionKindMismatch",
	KindDuplicateRootOperation:                   "DuplicateRootOperation",
	KindDuplicateImplementsInterfaceInObject:     "DuplicateImplementsInterfaceInObject",
	KindDuplicateImplementsInterfaceInInterface:  "DuplicateImplementsInterfaceInInterface",
	KindObjectFieldNameCollision:                 "ObjectFieldNameCollision",
	KindInterfaceFieldNameCollision:              "InterfaceFieldNameCollision",
	KindInputFieldNameCollision:                  "InputFieldNameCollision",
	KindEnumValueNameCollision:                   "EnumValueNameCollision",
	KindUnionMemberNameCollision:                 "UnionMemberNameCollision",
	KindDuplicateOperationName:                   "DuplicateOperationName",
	KindDuplicateFragmentName:                    "DuplicateFragmentName",
	KindUndefinedType:                            "UndefinedType",
	KindUndefinedField:                           "UndefinedField",
	KindUndefinedDirective:                       "UndefinedDirective",
	KindUndefinedFragment:                        "UndefinedFragment",
	KindUndefinedVariable:                        "UndefinedVariable",
	KindUnusedVariable:                           "UnusedVariable",
	KindUndefinedArgument:                        "UndefinedArgument",
	KindMissingRequiredArgument:                  "MissingRequiredArgument",
	KindMissingRequiredField:                     "MissingRequiredField",
	KindInputCoercion:                            "InputCoercion",
	KindOutputTypeExpected:                       "OutputTypeExpected",
	KindInputTypeExpected:                        "InputTypeExpected",
	KindInterfaceFieldSignatureMismatch:          "InterfaceFieldSignatureMismatch",
	KindInterfaceImplementationCycle:             "InterfaceImplementationCycle",
	KindFragmentCycle:                            "FragmentCycle",
	KindFragmentTypeConditionMismatch:            "FragmentTypeConditionMismatch",
	KindInlineFragmentTypeConditionMismatch:      "InlineFragmentTypeConditionMismatch",
	KindFieldMergeConflict:                       "FieldMergeConflict",
	KindLeafFieldHasSelection:                    "LeafFieldHasSelection",
	KindCompositeFieldMissingSelection:           "CompositeFieldMissingSelection",
	KindIntrospectionMisuse:                      "IntrospectionMisuse",
	KindAnonymousOperationNotAlone:               "AnonymousOperationNotAlone",
	KindNonRepeatableDirectiveRepeated:           "NonRepeatableDirectiveRepeated",
	KindDirectiveLocationMismatch:                "DirectiveLocationMismatch",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

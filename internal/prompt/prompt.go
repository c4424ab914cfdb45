// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package prompt assembles the two-message conversation sent to the model.
package prompt

import "strings"

// SystemRole is the persona given to the model.
const SystemRole = "Você é um engenheiro de software experiente que escreve documentação clara e objetiva de códigos."

const (
	baseInstruction = "Reescreva integralmente o código fornecido, ignorando a documentação atual e recriando uma nova documentação perfeita adequada a ele. " +
		"Complementando, crie uma introdução em forma de comentário após a importação das libs sobre o código analisado, sua funcionalidade, objetivos e saidas.\n"

	// HintsFraming introduces user supplied hints.
	HintsFraming = "Como dica sobre o código temos: "
	hintsSuffix  = "\nInclua comentários relevantes em cada parte."

	// InferInstruction asks the model to work out the purpose on its own.
	InferInstruction = "Analise o código e detecte sua finalidade para criar comentários adequados.\n"

	outputDirective = "A saída deve ser apenas o código comentado, sem texto adicional ou formatação Markdown."

	// CodeLabel precedes the embedded source text.
	CodeLabel = "Código:\n"
)

// Prompt is the system and user message pair for one completion.
type Prompt struct {
	System string
	User   string
}

// Build returns the prompt for the given source text and optional hints.
func Build(source, hints string) Prompt {
	var sb strings.Builder
	sb.WriteString(baseInstruction)
	if hints != "" {
		sb.WriteString(HintsFraming)
		sb.WriteString(hints)
		sb.WriteString(hintsSuffix)
	} else {
		sb.WriteString(InferInstruction)
	}
	sb.WriteString(outputDirective)
	sb.WriteString("\n\n")
	sb.WriteString(CodeLabel)
	sb.WriteString(source)

	return Prompt{System: SystemRole, User: sb.String()}
}

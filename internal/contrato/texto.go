package contrato

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/clubeestetica/api-contratos/internal/empresa"
	"github.com/clubeestetica/api-contratos/internal/plano"
)

var meses = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// DataPorExtenso formata a data no padrão "2 de janeiro de 2026".
func DataPorExtenso(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}

// textoPlanoEscolhido monta o bloco da cláusula 2.2 com o período e o nível
// escolhidos. O nível vem do identificador, não da modalidade resolvida.
func textoPlanoEscolhido(id string, p plano.Plano) string {
	periodo := "PLANO SEMESTRAL (6 Meses de Fidelidade)"
	if plano.Anual(id) {
		periodo = "PLANO ANUAL (12 Meses de Fidelidade - Desconto Extra)"
	}
	return fmt.Sprintf("O(A) CONTRATANTE optou por:\n[X] %s\n    (X) %s: %d EUR/mês",
		periodo, plano.Tipo(id), p.ValorMensal)
}

// A política de reagendamento é fixa, igual para todos os planos.
const textoReagendamentos = "Plano Basic: Permitido 01 (um) reagendamento mensal.\n" +
	"Plano Premium: Permitido até 02 (dois) reagendamentos mensais."

func beneficioPremium(id string) string {
	if strings.Contains(strings.ToUpper(id), "PREMIUM") {
		return "- Vantagem para o Premium: 1 Consultoria de skincare personalizada inclusa."
	}
	return ""
}

// MontarTexto produz o texto integral do contrato de adesão. É uma função
// pura: mesmos dados e mesmo agora produzem exatamente o mesmo texto.
func MontarTexto(c *Contrato, p plano.Plano, dados empresa.Dados, agora time.Time) string {
	r := strings.NewReplacer(
		"{contratada_nome}", dados.Nome,
		"{contratada_nif}", dados.NIF,
		"{contratada_endereco}", dados.Endereco,
		"{nome}", c.Nome,
		"{nif}", c.NIF,
		"{email}", c.Email,
		"{whatsapp}", c.WhatsApp,
		"{endereco}", c.Endereco,
		"{plano_escolhido}", textoPlanoEscolhido(c.Plano, p),
		"{reagendamentos_info}", textoReagendamentos,
		"{desconto_extras}", p.DescontoExtras,
		"{beneficio_premium}", beneficioPremium(c.Plano),
		"{fidelidade_meses}", strconv.Itoa(p.Fidelidade),
		"{data}", DataPorExtenso(agora),
		"{numero_contrato}", c.Numero,
	)
	return r.Replace(textoBase)
}

// textoBase é o modelo integral do contrato, com onze cláusulas numeradas.
// Os marcadores entre chaves são preenchidos por MontarTexto.
const textoBase = `CONTRATO DE ADESÃO
CLUBE + ESTÉTICA 3.0

Pelo presente instrumento particular, as partes abaixo qualificadas celebram este contrato de prestação de serviços:

CONTRATADA: {contratada_nome}, NIF {contratada_nif}, com sede em {contratada_endereco}, doravante denominada apenas CONTRATADA.

CONTRATANTE:
Nome: {nome}
NIF: {nif}
E-mail: {email}
WhatsApp: {whatsapp}
Endereço: {endereco}

Doravante denominado(a) CONTRATANTE.


CLÁUSULA 1ª - DO OBJETO

O Clube + Estética 3.0 consiste em um programa de acompanhamento estético mensal continuado. O tratamento fundamenta-se em protocolos personalizados, definidos e ajustados pela equipe técnica da CONTRATADA segundo a avaliação profissional e necessidades individuais de cada fase do(a) CONTRATANTE.

Nota importante: Este programa não se caracteriza como um "pacote fechado" de procedimentos fixos, mas sim como uma assinatura de acompanhamento estético recorrente.


CLÁUSULA 2ª - DOS PLANOS E INVESTIMENTOS

O Clube opera sob o modelo de assinatura, garantindo valores preferenciais em relação a tabela de serviços avulsos (preço médio de referência: 60 EUR/sessão).

2.1. Quadro Comparativo de Benefícios

 (Ver tabela comparativa abaixo)


2.2. Modalidades de Fidelização

{plano_escolhido}


CLÁUSULA 3ª - CONDIÇÕES GERAIS DE UTILIZAÇÃO

Duração: Cada sessão terá a duração máxima de 60 minutos.

Protocolos: A definição técnica do tratamento é de exclusiva responsabilidade da profissional.

Agendamento e Cancelamento: Cancelamentos ou alterações devem ser comunicados com 48h de antecedência. A ausência ou aviso tardio implicará na perda da sessão (considerada realizada).

Intransferibilidade: O plano é pessoal e não poderá ser utilizado por terceiros.

Não Cumulatividade: As sessões devem ser usufruídas dentro do mês de vigência. Sessões não utilizadas não acumulam para o mês seguinte.

Reagendamento:
{reagendamentos_info}


CLÁUSULA 4ª - BENEFÍCIOS EXCLUSIVOS

Além das sessões fixas, o membro terá direito a:

- Desconto em Serviços Extras: {desconto_extras}
{beneficio_premium}
- Descontos em parceiros.


CLÁUSULA 5ª - ROL DE PROCEDIMENTOS DISPONÍVEIS

O acompanhamento poderá abranger, conforme avaliação técnica, os seguintes procedimentos:

Segmento Facial:
- Dermaplaning
- Protocolo Fios de Seda
- Peeling de Vitamina C
- Revitalização Face/Pescoço/Colo
- Tratamento Antiacne
- Spa dos Lábios / HidraGloss
- Radiofrequência & Lipo LED

Segmento Corporal:
- Drenagens (Inf. / Abdominal / Total)
- FAT Redux
- Radiofrequência & Cavitação
- Lipo LED & Eletroestimulação
- Protocolos Específicos (Bumbum Up / Dreno Slim)
- Terapias (Termo / Crio / Gesso / Endermo)
- Tratamentos para Estrias e Lipedema

Parágrafo Único: Procedimentos que utilizem insumos importados (Brasil) estão sujeitos a disponibilidade de estoque, podendo ser substituídos por equivalentes de qualidade similar.


CLÁUSULA 6ª - DO PAGAMENTO

Vencimento: Até o dia 10 de cada mês.

Métodos: Transferência Bancária ou Espécie.

O atraso no pagamento poderá suspender a prestação dos serviços até a regularização.


CLÁUSULA 7ª - RESCISÃO E MULTA

A rescisão deverá ser solicitada com aviso prévio mínimo de 60 dias, por escrito ou e-mail.

Caso o(a) CONTRATANTE rescinda o contrato antes de findo o período de fidelidade escolhido ({fidelidade_meses} meses), será aplicada uma multa compensatória de 40% sobre o valor total das mensalidades vincendas até o término do contrato.


CLÁUSULA 8ª - VALIDADE JURÍDICA

Este contrato é validado mediante assinatura digital, confirmação por e-mail ou aceitação eletrônica.


CLÁUSULA 9ª - PROTEÇÃO DE DADOS (RGPD)

O(A) CONTRATANTE autoriza o tratamento dos seus dados pessoais para fins de gestão contratual e agendamentos. A utilização de imagens para fins publicitários será objeto de consentimento específico e separado.


CLÁUSULA 10ª - RESPONSABILIDADE TÉCNICA

O(A) CONTRATANTE obriga-se a informar sobre quaisquer condições de saúde, alergias, uso de medicação ou estado de gravidez. A CONTRATADA não se responsabiliza por reações decorrentes da omissão de tais informações.


CLÁUSULA 11ª - TOLERÂNCIA DE ATRASO

Será admitida uma tolerância de atraso de 10 minutos. Após este período, a sessão será realizada pelo tempo restante disponível, sem direito a compensação ou desconto, de forma a não comprometer os agendamentos seguintes.


Vila Nova de Gaia, {data}

CONTRATO Nº: {numero_contrato}


__________________________________
{contratada_nome} - Centro de Estética


__________________________________
Contratante (Assinatura Digital)`

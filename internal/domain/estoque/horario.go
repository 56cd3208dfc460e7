package estoque

import "time"

// FusoBrasil fuso da operação (sem horário de verão desde 2019). O banco
// guarda UTC; recortes de dia no histórico e no dashboard usam este fuso.
var FusoBrasil = time.FixedZone("America/Sao_Paulo", -3*60*60)
